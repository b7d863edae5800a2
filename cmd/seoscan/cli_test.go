package main_test

import (
	"bytes"
	"context"
	"strings"

	main "github.com/seoscan/seoscan/cmd/seoscan"
)

const pageHTML = `<!DOCTYPE html>
<html>
<head>
<title>Hi</title>
<meta name="description" content="A page">
<link rel="canonical" href="https://example.com/">
</head>
<body>
<h1>Welcome</h1>
<h2>Sub</h2>
</body>
</html>`

// newTestDeps builds Dependencies reading the given HTML from stdin.
func newTestDeps(stdin string) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdin:  strings.NewReader(stdin),
		Stdout: stdout,
		Stderr: stderr,
	}

	return deps, stdout, stderr
}
