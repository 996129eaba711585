package constant

import (
	_ "embed"
	"fmt"
	"strings"
	"time"
)

const Name = "jamlist"

var (
	//go:embed version
	Version string
	// Overridden at build time with -ldflags "-X github.com/xeptore/jamlist/constant.compileTime=...".
	compileTime = "2026-10-18T00:00:00Z"
	CompileTime time.Time
)

func init() {
	Version = strings.TrimSpace(Version)

	t, err := time.Parse(time.RFC3339, compileTime)
	if nil != err {
		panic(fmt.Errorf("could not parse compile time %q. Make sure it is set to an RFC3339 timestamp at build time", compileTime))
	}
	CompileTime = t
}
