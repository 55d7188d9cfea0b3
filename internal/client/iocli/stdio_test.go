package iocli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnAndPrintf(t *testing.T) {
	out := &bytes.Buffer{}
	stdio := NewStdioFrom(strings.NewReader(""), out)

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s", 1, "abc")
	_, err := stdio.Write([]byte("!"))
	require.NoError(t, err)

	assert.Equal(t, "hello world\ntest 1 abc!", out.String())
}

// Тест ReadInput: читаем из pipe вместо os.Stdin
func TestReadInput(t *testing.T) {
	input := "  user input \n"
	r, w, err := os.Pipe()
	require.NoError(t, err)

	// Пишем в pipe в отдельной горутине, имитируя ввод пользователя
	go func() {
		_, _ = w.Write([]byte(input))
		_ = w.Close()
	}()

	out := &bytes.Buffer{}
	stdio := NewStdioFrom(r, out)
	result, err := stdio.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "user input", result)
	assert.Equal(t, "Prompt: ", out.String())
}

func TestReadLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "unix newlines", input: "one\ntwo\n", want: []string{"one", "two"}},
		{name: "crlf", input: "one\r\ntwo\r\n", want: []string{"one", "two"}},
		{name: "last line without newline", input: "one\ntwo", want: []string{"one", "two"}},
		{name: "blank lines kept", input: "\n  \n", want: []string{"", "  "}},
		{name: "empty", input: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdio := NewStdioFrom(strings.NewReader(tt.input), io.Discard)

			var got []string
			for {
				line, err := stdio.ReadLine()
				if err != nil {
					assert.ErrorIs(t, err, io.EOF)
					break
				}
				got = append(got, line)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
