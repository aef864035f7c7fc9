package notifications

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kiwi-kloset/cmd/api/costume"
	"github.com/matryer/is"
)

var created = costume.CostumeView{
	Costume:    costume.Costume{ID: 12, Name: "Kiwi Bird", Size: "S"},
	BranchName: "Wellington",
}

func TestCostumeCreated(t *testing.T) {
	t.Run("publishes the new costume to the topic", func(t *testing.T) {
		is := is.New(t)

		var gotPath, gotBody, gotMethod string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			gotPath, gotBody, gotMethod = r.URL.Path, string(body), r.Method
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		ntfy := NewNtfy(true, server.URL+"/kiwi_test/", server.Client())
		err := ntfy.CostumeCreated(context.Background(), created)
		is.NoErr(err)
		is.Equal(gotMethod, http.MethodPost)
		is.Equal(gotPath, "/kiwi_test/New_costume_added")
		is.Equal(gotBody, "New costume added: #12 Kiwi Bird (S) at Wellington")
	})

	t.Run("disabled notifications send nothing", func(t *testing.T) {
		is := is.New(t)

		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		defer server.Close()

		ntfy := NewNtfy(false, server.URL, server.Client())
		err := ntfy.CostumeCreated(context.Background(), created)
		is.NoErr(err)
		is.Equal(calls, 0)
	})

	t.Run("expected error on a wrong response", func(t *testing.T) {
		is := is.New(t)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		ntfy := NewNtfy(true, server.URL, server.Client())
		err := ntfy.CostumeCreated(context.Background(), created)
		is.Equal(err, costume.NewErrNotificationFailed(http.StatusTooManyRequests))
	})

	t.Run("expected context timeout error", func(t *testing.T) {
		is := is.New(t)

		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer server.Close()
		defer close(release)

		ntfy := NewNtfy(true, server.URL, server.Client())
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err := ntfy.CostumeCreated(ctx, created)
		is.True(errors.Is(err, context.DeadlineExceeded))
	})
}
