package notificationControllers

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diaandrei/Flexiro-sub000/models"
)

func dialHub(t *testing.T, hub *Hub, userID string) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", func(c *gin.Context) {
		c.Set("user_id", userID)
	}, StreamHandler(hub))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial(
		"ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	// The handler registers after the upgrade completes.
	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return len(hub.clients[userID]) > 0
	}, time.Second, 5*time.Millisecond)

	return conn
}

func TestPushDeliversToOpenConnection(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	conn := dialHub(t, hub, "seller-1")

	hub.Push(models.Notification{UserID: "seller-1", Message: "New order received."})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(data), "New order received.")
}

func TestPushIgnoresUsersWithoutConnections(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	// Must not panic or block.
	hub.Push(models.Notification{UserID: "nobody", Message: "hello"})
}

func TestPushConcurrentToSameConnection(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	conn := dialHub(t, hub, "seller-1")

	// Concurrent checkouts push to the same seller; every write must be
	// serialized onto the single connection.
	const pushes = 20
	var wg sync.WaitGroup
	for i := 0; i < pushes; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.Push(models.Notification{UserID: "seller-1", Message: "New order received."})
		}()
	}
	wg.Wait()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for i := 0; i < pushes; i++ {
		_, _, err := conn.ReadMessage()
		require.NoError(t, err)
	}
}
