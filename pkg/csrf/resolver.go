package csrf

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// DefaultMaxBodyBytes bounds how much of a request body is buffered while
// looking for a submitted token.
const DefaultMaxBodyBytes = 1 << 20 // 1 MB

// DatastarRequestHeader is set by the Datastar client on every backend action.
const DatastarRequestHeader = "Datastar-Request"

// TokenSource names where a client submits its token.
type TokenSource struct {
	HeaderName string
	FieldName  string
}

// ResolveToken returns the token text submitted with r, or "" when none was
// submitted. The header wins over the body. A body that has to be inspected is
// read once, up to maxBody bytes, and put back on r.Body for later handlers.
// Malformed bodies count as "no token"; only read failures are returned.
func ResolveToken(r *http.Request, src TokenSource, maxBody int64) (string, error) {
	if src.HeaderName != "" {
		if v := strings.TrimSpace(r.Header.Get(src.HeaderName)); v != "" {
			return v, nil
		}
	}
	if src.FieldName == "" {
		return "", nil
	}

	if r.Header.Get(DatastarRequestHeader) == "true" {
		return datastarSignal(r, src.FieldName, maxBody)
	}

	if r.Body == nil || r.Body == http.NoBody {
		return "", nil
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "text/plain"
	}
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", nil
	}

	body, err := readBody(r, maxBody)
	if err != nil {
		return "", err
	}

	switch {
	case mediaType == "application/x-www-form-urlencoded":
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return "", nil
		}
		return values.Get(src.FieldName), nil
	case mediaType == "multipart/form-data":
		return multipartField(body, params["boundary"], src.FieldName), nil
	case isJSON(mediaType):
		return jsonMember(body, src.FieldName), nil
	case mediaType == "text/plain":
		return plainTextToken(body, src.FieldName), nil
	}
	return "", nil
}

func isJSON(mediaType string) bool {
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// readBody buffers the body and rewinds r.Body. On overflow the consumed
// prefix is stitched back in front of the unread rest.
func readBody(r *http.Request, limit int64) ([]byte, error) {
	if err := r.Context().Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}

	orig := r.Body
	body, err := io.ReadAll(io.LimitReader(orig, limit+1))
	r.Body = &replayBody{Reader: io.MultiReader(bytes.NewReader(body), orig), Closer: orig}
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > limit {
		return nil, ErrBodyTooLarge
	}
	return body, nil
}

type replayBody struct {
	io.Reader
	io.Closer
}

func multipartField(body []byte, boundary, field string) string {
	if boundary == "" {
		return ""
	}
	mr := multipart.NewReader(bytes.NewReader(body), boundary)
	for {
		part, err := mr.NextPart()
		if err != nil {
			return ""
		}
		if part.FormName() != field || part.FileName() != "" {
			continue
		}
		v, err := io.ReadAll(part)
		if err != nil {
			return ""
		}
		return string(v)
	}
}

func jsonMember(body []byte, field string) string {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return ""
	}
	var v string
	if err := json.Unmarshal(obj[field], &v); err != nil {
		return ""
	}
	return v
}

// plainTextToken handles fetch-style posts: a JSON argument list whose first
// object carries the field, a bare JSON object, or the raw token itself.
func plainTextToken(body []byte, field string) string {
	var args []json.RawMessage
	if err := json.Unmarshal(body, &args); err == nil {
		for _, arg := range args {
			if v := jsonMember(arg, field); v != "" {
				return v
			}
		}
		return ""
	}
	if v := jsonMember(body, field); v != "" {
		return v
	}
	return strings.TrimSpace(string(body))
}

func datastarSignal(r *http.Request, field string, maxBody int64) (string, error) {
	req := r
	if r.Method != http.MethodGet {
		if r.Body == nil || r.Body == http.NoBody {
			return "", nil
		}
		body, err := readBody(r, maxBody)
		if err != nil {
			return "", err
		}
		req = r.Clone(r.Context())
		req.Body = io.NopCloser(bytes.NewReader(body))
	}

	signals := map[string]any{}
	if err := datastar.ReadSignals(req, &signals); err != nil {
		return "", nil
	}
	v, _ := signals[field].(string)
	return v, nil
}
