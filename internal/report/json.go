package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/clo-analytics/internal/pipeline"
)

func WriteJSON(r *pipeline.Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
