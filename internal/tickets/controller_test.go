package tickets

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func() *gin.Context {
		ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
		return ctx
	}

	t.Run("missing claim yields nil", func(t *testing.T) {
		assert.Nil(t, actorID(newCtx()))
	})

	t.Run("non-string claim yields nil instead of panicking", func(t *testing.T) {
		ctx := newCtx()
		ctx.Set("user_id", 12345)
		assert.Nil(t, actorID(ctx))
	})

	t.Run("malformed id yields nil", func(t *testing.T) {
		ctx := newCtx()
		ctx.Set("user_id", "not-a-uuid")
		assert.Nil(t, actorID(ctx))
	})

	t.Run("valid claim parses", func(t *testing.T) {
		ctx := newCtx()
		id := uuid.New()
		ctx.Set("user_id", id.String())
		got := actorID(ctx)
		require.NotNil(t, got)
		assert.Equal(t, id, *got)
	})
}
