package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/lukaszgryglicki/tesseract4d/internal/tesseract4d"
)

func main() {
	tesseract4d.Debug = os.Getenv("DEBUG") != ""
	tesseract4d.PNG = os.Getenv("PNG") != ""
	tesseract4d.NoGIF = os.Getenv("NO_GIF") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := "scenes/config.json"
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := tesseract4d.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
