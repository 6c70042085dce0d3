package csrf

import (
	"context"
	"encoding/json"

	"github.com/starfederation/datastar-go/datastar"
)

// PatchTokenSignal pushes the token issued for the current request into the
// Datastar signal store, so the next backend action submits it.
func (p *Protector) PatchTokenSignal(ctx context.Context, sse *datastar.ServerSentEventGenerator) error {
	return PatchTokenSignal(sse, p.cfg.Token.FieldName, TokenFromContext(ctx))
}

// PatchTokenSignal sets signal field to token on the client.
func PatchTokenSignal(sse *datastar.ServerSentEventGenerator, field, token string) error {
	data, err := json.Marshal(map[string]string{field: token})
	if err != nil {
		return err
	}
	return sse.PatchSignals(data)
}
