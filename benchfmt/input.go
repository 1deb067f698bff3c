// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"io"
	"os"

	"github.com/rotisserie/eris"
)

// ErrNoInput is returned when there is no report text to read.
var ErrNoInput = eris.New("no benchmark report provided")

// An Input locates the text of one benchmark report.
//
// Text takes priority over Path. An Input with neither has no report.
type Input struct {
	// Text is the literal report text.
	Text string

	// Path is the file to read the report from.
	Path string

	// AllowStdin indicates that the path "-" should be treated as
	// stdin.
	//
	// This is generally the desired behavior when the path comes
	// from command-line arguments.
	AllowStdin bool

	// Stdin is read for path "-". If nil, os.Stdin is used.
	Stdin io.Reader
}

func (in *Input) isStdin() bool {
	return in.Text == "" && in.AllowStdin && in.Path == "-"
}

// Name returns a name for the report suitable for diagnostics.
func (in *Input) Name() string {
	switch {
	case in.Text != "":
		return "<report>"
	case in.isStdin():
		return "<stdin>"
	}
	return in.Path
}

// Load returns the report text. It returns an error wrapping
// ErrNoInput if there is no report or the report is empty.
func (in *Input) Load() (string, error) {
	if in.Text != "" {
		return in.Text, nil
	}
	if in.Path == "" {
		return "", ErrNoInput
	}

	var data []byte
	var err error
	if in.isStdin() {
		stdin := in.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(in.Path)
	}
	if err != nil {
		return "", eris.Wrapf(err, "reading report %s", in.Name())
	}
	if len(data) == 0 {
		return "", eris.Wrapf(ErrNoInput, "%s is empty", in.Name())
	}
	return string(data), nil
}
