package appointment

import "time"

// Antecedência mínima para o cliente cancelar o próprio agendamento.
// A barbearia cancela sem restrição de janela.
const ClientCancelMinNotice = 2 * time.Hour

// WithinCancellationWindow: exatamente 2h de antecedência ainda permite
// cancelar (limite inferior inclusivo).
func WithinCancellationWindow(scheduled, now time.Time) bool {
	return !scheduled.Before(now.Add(ClientCancelMinNotice))
}
