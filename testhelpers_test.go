package dzcobs

import (
	"fmt"
	"strings"
	"testing"

	"github.com/renstrom/dedent"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// hexDump renders b the way the original C test harness's debug dump does,
// one space-separated "0xNN" per byte.
func hexDump(b []byte) string {
	var sb strings.Builder
	for i, v := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "0x%02X", v)
	}
	return sb.String()
}

// assertFrameEqual fails t with a readable diff (rather than two raw hex
// dumps side by side) when got and want differ.
func assertFrameEqual(t *testing.T, got, want []byte) {
	t.Helper()
	if string(got) == string(want) {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(hexDump(want), hexDump(got), false)
	t.Fatalf("frame mismatch:\n want: %s\n got:  %s\n diff: %s",
		hexDump(want), hexDump(got), dmp.DiffPrettyText(diffs))
}

// dedentBlob dedents a multi-line indented literal and strips the leading
// newline left by writing the literal on its own line, matching the
// fixture style peggyvm_test.go uses for other multi-line binary literals.
func dedentBlob(s string) []byte {
	return []byte(dedent.Dedent(s))[1:]
}
