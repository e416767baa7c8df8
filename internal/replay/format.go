package replay

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Output formats.
const (
	FormatText = "text"
	FormatCSV  = "csv"
)

// Write prints the result. The text format writes one row per line with
// space-separated cells; csv writes every cell row-major on a single line.
// Both end with the score, and "game over" when the session finished.
func Write(w io.Writer, res Result, format string) error {
	var body string
	switch format {
	case FormatText, "":
		body = res.Board.String()
	case FormatCSV:
		cells := make([]string, 0, engine.Size*engine.Size)
		for _, row := range res.Board {
			for _, v := range row {
				cells = append(cells, strconv.Itoa(v))
			}
		}
		body = strings.Join(cells, ",")
	default:
		return fmt.Errorf("replay: unknown format %q", format)
	}

	if _, err := fmt.Fprintf(w, "%s\nscore: %d\n", body, res.Score); err != nil {
		return err
	}
	if res.GameOver {
		if _, err := io.WriteString(w, "game over\n"); err != nil {
			return err
		}
	}
	return nil
}
