package run

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Report describes one segment run for the .lastrun marker file.
type Report struct {
	RunID    string   `json:"run_id"`
	Base     string   `json:"base"`
	Tag      string   `json:"tag"`
	Seed     int64    `json:"seed"`
	Variants int      `json:"variants"`
	Finished string   `json:"finished"`
	Written  []string `json:"written"`
}

// WriteReport persists the report as .lastrun.{tag}.json inside dir.
// A fresh run id is assigned when the caller left it empty.
func WriteReport(dir string, rep Report) (string, error) {
	if rep.RunID == "" {
		rep.RunID = uuid.NewString()
	}
	if rep.Finished == "" {
		rep.Finished = time.Now().UTC().Format(time.RFC3339)
	}
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, ".lastrun."+rep.Tag+".json")
	if err := os.WriteFile(p, data, 0644); err != nil {
		return "", err
	}
	return p, nil
}
