package run

import "fmt"

func runLogWriter(lines <-chan string) {
	for s := range lines {
		fmt.Println(s)
	}
}
