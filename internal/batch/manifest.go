package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame    int        `json:"frame"`
	Rotation [3]float64 `json:"rotation"`
	Image    string     `json:"image"`
}

// WriteManifest writes manifest.json describing the rendered sequence.
func WriteManifest(path string, cfg Config, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		rot := cfg.Step.Scale(float64(r.Frame))
		entries[i] = ManifestEntry{
			Frame:    r.Frame,
			Rotation: [3]float64{rot[0], rot[1], rot[2]},
			Image:    r.Image,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
