package report

import (
	"bytes"

	"github.com/IvanShishkin/dirlist/pkg/models"
	"gopkg.in/yaml.v3"
)

// renderYAML generates a YAML report
func renderYAML(report *models.InventoryReport) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(NewDocument(report)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
