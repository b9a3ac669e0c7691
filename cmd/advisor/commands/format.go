package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wonny/cryptoadvisor/internal/report"
)

// ═══════════════════════════════════════════════════════════
// Common Output Utilities
// 모든 커맨드가 동일한 --format 처리를 사용하도록 통일
// ═══════════════════════════════════════════════════════════

// emit writes data as JSON or md in the selected text format
func emit(cmd *cobra.Command, data interface{}, md string) error {
	format, err := report.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == report.FormatJSON {
		return writeJSON(out, data)
	}

	rendered, err := report.Render(md, format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}

// emitMessage writes a user-facing message that has no structured payload
func emitMessage(cmd *cobra.Command, msg string) error {
	return emit(cmd, map[string]string{"message": msg}, msg)
}

func writeJSON(w io.Writer, data interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
