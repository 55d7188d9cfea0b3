package iocli

//go:generate moq -out io_mock.go . IO

// IO абстрагирует консольный ввод-вывод для команд клиента.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadLine() (string, error)
	Write(p []byte) (n int, err error)
}
