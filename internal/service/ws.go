package service

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
)

// WsConn is the part of websocket.Conn used by the handler
type WsConn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteJSON(v interface{}) error
}

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	}}

func subscribe(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		ws, err := wsUpgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			goapp.Log.Error().Err(err).Send()
			return err
		}
		defer ws.Close()

		return handleConnection(data.Ctx, ws, data)
	}
}

// handleConnection decodes every text frame as one word and replies with a JSON result
func handleConnection(ctx context.Context, conn WsConn, data *Data) error {
	id := ulid.Make().String()
	goapp.Log.Info().Str("id", id).Msg("ws connected")
	defer goapp.Log.Info().Str("id", id).Msg("ws finished")

	ctx, cf := context.WithCancel(ctx)
	defer cf()
	readCh := readWebSocket(ctx, conn)
	for {
		var d wsData
		var ok bool
		select {
		case <-ctx.Done():
			goapp.Log.Info().Msg("context canceled")
			return nil
		case d, ok = <-readCh:
			if !ok {
				return nil
			}
		}
		if d.t != websocket.TextMessage {
			continue
		}
		word := strings.TrimSpace(string(d.msg))
		if word == "" {
			continue
		}
		if err := conn.WriteJSON(decodeWord(ctx, data, word)); err != nil {
			goapp.Log.Error().Err(err).Msg("write error")
			return nil
		}
	}
}

type wsData struct {
	t   int
	msg []byte
}

func readWebSocket(ctx context.Context, in WsConn) <-chan wsData {
	resCh := make(chan wsData)
	go func() {
		defer close(resCh)
		defer goapp.Log.Debug().Msg("read routine ended")
		for {
			mType, message, err := in.ReadMessage()
			if err != nil {
				if websocket.IsCloseError(err, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) ||
					errors.Is(err, net.ErrClosed) {
					goapp.Log.Info().Msg("connection closed")
					return
				}
				goapp.Log.Error().Err(err).Send()
				return
			}
			select {
			case resCh <- wsData{t: mType, msg: message}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return resCh
}
