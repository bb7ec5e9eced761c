package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barberclub/booking-api/internal/httperr"
	"github.com/barberclub/booking-api/internal/metrics"
)

// mapAdmissionErrors traduz os desfechos de negócio da admissão para
// HTTP. slot_unavailable é resultado esperado e frequente: o front deve
// recarregar a grade e pedir outro horário, não tratar como falha.
func mapAdmissionErrors(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "failed_to_create_booking", "Erro ao criar agendamento.")
		return
	}

	metrics.IncRejected(code)

	switch code {
	case "client_not_found":
		httperr.Unauthorized(c, code, "Conta não encontrada. Entre novamente.")

	case "subscription_inactive":
		httperr.PaymentRequired(c, code, "Assinatura em atraso. Regularize o pagamento para agendar.")

	case "slot_unavailable":
		httperr.Conflict(c, code, "Horário acabou de ser ocupado. Escolha outro.")

	case "day_restricted":
		httperr.BadRequest(c, code, "Seu plano não permite agendar neste dia da semana.")

	case "visit_too_soon":
		httperr.BadRequest(c, code, "Intervalo mínimo entre visitas ainda não passou.")

	case "too_soon":
		httperr.BadRequest(c, code, "Horário muito próximo ou no passado.")

	case "invalid_date_or_time":
		httperr.BadRequest(c, code, "Data ou hora inválida.")

	case "missing_services", "service_not_found":
		httperr.BadRequest(c, code, "Serviço inválido.")

	case "outside_working_hours":
		httperr.BadRequest(c, code, "Fora do horário de atendimento.")

	case "invalid_configuration":
		httperr.Internal(c, code, "Agenda do barbeiro mal configurada.")

	default:
		httperr.BadRequest(c, code, "Não foi possível agendar.")
	}
}
