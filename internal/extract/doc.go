package extract

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/richardlehane/mscfb"
)

// minRunLen filters out the binary noise interleaved with text in the
// WordDocument stream; shorter printable runs are almost never prose.
const minRunLen = 5

// extractDOC pulls text from a legacy word-processor document. The OLE
// compound container is walked with github.com/richardlehane/mscfb and the
// WordDocument stream is scraped for printable runs. Best effort: the binary
// piece table is not interpreted.
func extractDOC(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening doc: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader, err := mscfb.New(f)
	if err != nil {
		return "", fmt.Errorf("reading compound file: %w", err)
	}

	for entry, err := reader.Next(); err == nil; entry, err = reader.Next() {
		if entry.Name != "WordDocument" {
			continue
		}
		raw, err := io.ReadAll(entry)
		if err != nil {
			return "", fmt.Errorf("reading WordDocument stream: %w", err)
		}
		return scrapePrintable(raw), nil
	}
	return "", errors.New("no WordDocument stream found")
}

// scrapePrintable collects printable runs from a binary stream, joining them
// with newlines.
func scrapePrintable(data []byte) string {
	var out strings.Builder
	var run strings.Builder
	flush := func() {
		if run.Len() >= minRunLen {
			if out.Len() > 0 {
				out.WriteString("\n")
			}
			out.WriteString(strings.TrimSpace(run.String()))
		}
		run.Reset()
	}
	for _, b := range data {
		if b >= 0x20 && b <= 0x7e || b == '\t' {
			run.WriteByte(b)
			continue
		}
		// Word's paragraph mark (CR) ends a run like any other control byte;
		// keeping the run open would let sub-threshold noise ride along with
		// the next line.
		flush()
	}
	flush()
	return strings.TrimSpace(out.String())
}
