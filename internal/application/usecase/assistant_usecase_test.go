package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jhoicas/wellcomputer-pos/internal/application/dto"
	"github.com/jhoicas/wellcomputer-pos/internal/application/ports/mocks"
	"github.com/jhoicas/wellcomputer-pos/internal/application/usecase"
	"github.com/jhoicas/wellcomputer-pos/internal/domain"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/entity"
)

func TestAssistantAsk_ContextoFiltradoPorRol(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	llm := mocks.NewMockLLMService(ctrl)
	uc := usecase.NewAssistantUseCase(llm, f.products, f.ledger, 0, zerolog.Nop())

	require.NoError(t, f.ledger.Append(&entity.Transaction{
		ID: "t3", SalesID: "u9", SalesName: "Dewi Sales", ProductName: "HP Victus 16", Price: 14000000,
	}))

	llm.EXPECT().
		Answer(gomock.Any(), "Berapa stok MacBook?", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, sc dto.AssistantContext) (string, error) {
			assert.Len(t, sc.Products, 4)
			assert.Equal(t, "MacBook Air M2", sc.Products[1].Name)
			assert.Equal(t, 12, sc.Products[1].Stock)
			require.Len(t, sc.Transactions, 2)
			for _, tx := range sc.Transactions {
				assert.Equal(t, "Andi Sales", tx.SalesName)
			}
			return "Stok MacBook Air M2 ada 12 unit.", nil
		})

	resp, err := uc.Ask(t.Context(), salesUser, "  Berapa stok MacBook?  ")
	require.NoError(t, err)
	assert.Equal(t, "Stok MacBook Air M2 ada 12 unit.", resp.Answer)
}

func TestAssistantAsk_UltimasDiezVentas(t *testing.T) {
	f := newFixture(t)
	for i := range 15 {
		require.NoError(t, f.ledger.Append(&entity.Transaction{
			ID: "tx" + string(rune('a'+i)), SalesID: "u4", SalesName: "Andi Sales", Price: int64(i),
		}))
	}
	ctrl := gomock.NewController(t)
	llm := mocks.NewMockLLMService(ctrl)
	uc := usecase.NewAssistantUseCase(llm, f.products, f.ledger, 0, zerolog.Nop())

	llm.EXPECT().Answer(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, sc dto.AssistantContext) (string, error) {
			require.Len(t, sc.Transactions, 10)
			assert.Equal(t, int64(14), sc.Transactions[0].Price)
			return "", nil
		})

	resp, err := uc.Ask(t.Context(), owner, "Siapa sales paling aktif?")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Answer)
}

func TestAssistantAsk_FalloDelLLM(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	llm := mocks.NewMockLLMService(ctrl)
	uc := usecase.NewAssistantUseCase(llm, f.products, f.ledger, 0, zerolog.Nop())

	llm.EXPECT().Answer(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("503"))
	_, err := uc.Ask(t.Context(), owner, "Halo")
	assert.ErrorIs(t, err, domain.ErrExternalService)

	_, err = uc.Ask(t.Context(), owner, "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}
