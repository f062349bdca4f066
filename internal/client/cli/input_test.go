package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword(&out)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetInt(t *testing.T) {
	var out bytes.Buffer
	got, err := GetInt(rdr("42\n"), "Id?", &out)
	require.NoError(t, err)
	require.Equal(t, int64(42), got)

	_, err = GetInt(rdr("forty-two\n"), "Id?", &out)
	require.Error(t, err)
}

func TestGetFloat(t *testing.T) {
	var out bytes.Buffer
	got, err := GetFloat(rdr("19.99\n"), "Price?", &out)
	require.NoError(t, err)
	require.Equal(t, 19.99, got)

	_, err = GetFloat(rdr("free\n"), "Price?", &out)
	require.Error(t, err)
}
