//go:build !debug
// +build !debug

package tesseract4d

import (
	"fmt"
	"sync"
)

// DebugLog prints only when Debug is switched on at runtime; build with -tags debug to log always.
func DebugLog(format string, args ...interface{}) {
	if Debug {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	}
}

var once sync.Once

func DebugLogOnce(format string, args ...interface{}) {
	if Debug {
		once.Do(func() {
			fmt.Printf("[DEBUG] "+format+"\n", args...)
		})
	}
}
