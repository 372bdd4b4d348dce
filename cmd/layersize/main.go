// layersize: recommend a hidden-layer width for a tabular network
//
// Usage:
//
//	layersize estimate --inputs=10 --outputs=2 --samples=600
//	layersize dataset adult.csv --target=income --save
//	layersize sweep --inputs=10 --outputs=2 --samples=600 --from=2 --to=10
package main

import (
	"log/slog"
	"os"
)

func main() {
	slog.SetDefault(newLogger(os.Stderr, false))
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("layersize failed", "err", err)
		os.Exit(1)
	}
}
