package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"deliveryhub/internal/entities"
	"deliveryhub/internal/pkg/actorctx"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const maxBodyBytes = 64 << 10

func Actor(r *http.Request) (entities.Actor, error) {
	actor, ok := actorctx.FromContext(r.Context())
	if !ok {
		return entities.Actor{}, ErrNoActor
	}
	return actor, nil
}

// PathID parses the {id} route variable.
func PathID(r *http.Request) (uuid.UUID, error) {
	raw := mux.Vars(r)["id"]
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: id %q is not a uuid", ErrMalformedRequest, raw)
	}
	return id, nil
}

// DecodeJSON reads a JSON body into dst. An empty body is accepted only
// when optional is set.
func DecodeJSON(r *http.Request, dst any, optional bool) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	err := decoder.Decode(dst)
	if errors.Is(err, io.EOF) && optional {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedRequest, err)
	}
	return nil
}
