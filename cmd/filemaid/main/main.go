package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/filemaid/filemaid/cmd/filemaid"
	"github.com/filemaid/filemaid/pkg/errors"
	"github.com/filemaid/filemaid/pkg/style"
)

func main() {
	rootCmd := filemaid.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Missing inputs get the bare message; everything else is
		// prefixed so the cause is obvious in scripts and logs
		msg := fmt.Sprintf("Error: %v", err)
		if errors.IsErrorCode(err, errors.ErrNotFound) {
			var maidErr *errors.MaidError
			if stderrors.As(err, &maidErr) {
				msg = maidErr.Message
			}
		}
		fmt.Fprintln(os.Stderr, style.RenderError(os.Stderr, msg))
		os.Exit(1)
	}
}
