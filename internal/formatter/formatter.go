package formatter

import (
	"fmt"

	"waitcmp/internal/report"
)

func Format(content report.Content, format string) (string, error) {
	switch format {
	case "text":
		return content.ToText()
	case "markdown":
		return content.ToMarkdown()
	case "csv":
		return content.ToCSV()
	case "table":
		return content.ToTable()
	case "json":
		b, err := content.ToJSON()
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}
