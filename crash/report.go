package crash

import (
	"strings"

	"github.com/midian/base/device"
)

// BuildReport formats the crash report for failure:
//
//	Android: 14(Pixel 7)
//	Exception: <message>
//	<one stack frame per line>
func BuildReport(info device.Info, failure any) string {
	var b strings.Builder
	b.WriteString(info.String())
	b.WriteString("\n")
	b.WriteString("Exception: ")
	b.WriteString(message(failure))
	b.WriteString("\n")
	for _, frame := range frames(failure) {
		b.WriteString(frame)
		b.WriteString("\n")
	}
	return b.String()
}
