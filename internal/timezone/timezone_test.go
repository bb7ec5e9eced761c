package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("America/Sao_Paulo"))
	assert.True(t, IsValid("UTC"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Marte/Cratera_Gale"))
}

func TestLocation_FallbackParaDefault(t *testing.T) {
	loc := Location("zona-que-nao-existe")
	assert.Equal(t, DefaultTimezone, loc.String())
}

func TestParseDateTime(t *testing.T) {
	at, err := ParseDateTime("America/Sao_Paulo", "2030-01-07", "10:00")
	require.NoError(t, err)

	assert.Equal(t, 2030, at.Year())
	assert.Equal(t, 10, at.Hour())
	assert.Equal(t, "America/Sao_Paulo", at.Location().String())

	_, err = ParseDateTime("America/Sao_Paulo", "07/01/2030", "10:00")
	assert.Error(t, err)

	_, err = ParseDateTime("America/Sao_Paulo", "2030-01-07", "10h00")
	assert.Error(t, err)
}

func TestDayBounds(t *testing.T) {
	date, err := ParseDate("America/Sao_Paulo", "2030-01-07")
	require.NoError(t, err)

	start, end := DayBounds("America/Sao_Paulo", date)

	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 24*time.Hour, end.Sub(start))
	assert.True(t, SameDay("America/Sao_Paulo", date, start))
	assert.False(t, SameDay("America/Sao_Paulo", date, end))
}

func TestSameDay_ComparaNaZonaDaOperacao(t *testing.T) {
	// 23:00 em São Paulo = 02:00 UTC do dia seguinte
	local, err := ParseDateTime("America/Sao_Paulo", "2030-01-07", "23:00")
	require.NoError(t, err)

	sameInstantUTC := local.UTC()
	assert.Equal(t, 8, sameInstantUTC.Day())

	// mesmo instante, mesmo dia civil da operação
	assert.True(t, SameDay("America/Sao_Paulo", local, sameInstantUTC))
}
