package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetLevel(0)

	SetLevel(INFO)
	Println("sum", "16/21")
	Verbosef("operands %d %d", 5, 15)
	Debugf("gcd %d", 5)
	assert.Contains(buf.String(), "sum 16/21")
	assert.NotContains(buf.String(), "operands")
	assert.NotContains(buf.String(), "gcd")

	buf.Reset()
	SetLevel(VERBOSE)
	Verbosef("operands %d %d", 5, 15)
	Debugf("gcd %d", 5)
	assert.Contains(buf.String(), "operands 5 15")
	assert.NotContains(buf.String(), "gcd")

	buf.Reset()
	SetLevel(DEBUG)
	Debugf("gcd %d", 5)
	Println("done")
	assert.Contains(buf.String(), "gcd 5")
	assert.Contains(buf.String(), "done")

	buf.Reset()
	SetLevel(ERROR)
	Println("hidden")
	assert.Equal("", buf.String())
}
