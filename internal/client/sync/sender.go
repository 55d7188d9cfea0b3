package sync

//go:generate moq -out sender_mock.go . Sender

// Sender передает исходящие события транспорту.
// Реализация не должна блокироваться: шаги сверки выполняются до конца.
type Sender interface {
	// Send отправляет событие с данными payload
	Send(event string, payload any) error
}
