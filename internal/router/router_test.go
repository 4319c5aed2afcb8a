package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	mem "pawkind/internal/adapters/storage/memory"
	"pawkind/internal/domain/pets"
	"pawkind/internal/router"
)

func TestHTTP_AdoptionFlow(t *testing.T) {
	petRepo := mem.NewPetRepo()
	adoptionRepo := mem.NewAdoptionRepo(petRepo)

	petsSvc := pets.NewService(petRepo)
	bella, err := petsSvc.Create(context.Background(), pets.CreateInput{
		Name: "Bella", Type: "dog", Age: "2 years", Bio: "Friendly and energetic.",
	})
	if err != nil {
		t.Fatalf("create pet: %v", err)
	}
	whiskers, err := petsSvc.Create(context.Background(), pets.CreateInput{
		Name: "Whiskers", Type: "cat", Age: "1 year", Bio: "Gentle lap cat.",
	})
	if err != nil {
		t.Fatalf("create pet: %v", err)
	}

	ts := httptest.NewServer(router.New(router.Options{
		Pets:      petRepo,
		Adoptions: adoptionRepo,
	}))
	defer ts.Close()

	// 1) Ambas mascotas listadas, ninguna adoptada
	{
		st, body := doReq(t, ts.URL, "GET", "/api/pets", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list pets, got %d body=%s", st, string(body))
		}
		listed := decodePets(t, body)
		if len(listed) != 2 {
			t.Fatalf("expected 2 pets, got %d", len(listed))
		}
		for _, p := range listed {
			if p.Adopted {
				t.Fatalf("list returned adopted pet %s", p.ID)
			}
		}
	}

	// 2) Adoptar a Bella
	{
		st, body := doReq(t, ts.URL, "POST", "/api/adoptions", map[string]any{
			"petId":    bella.ID,
			"userName": "Ana",
			"petName":  bella.Name,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 adoption, got %d body=%s", st, string(body))
		}
	}

	// 3) Bella ya no aparece en el listado
	{
		st, body := doReq(t, ts.URL, "GET", "/api/pets", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list pets, got %d", st)
		}
		listed := decodePets(t, body)
		if len(listed) != 1 || listed[0].ID != whiskers.ID {
			t.Fatalf("expected only %s listed, got %+v", whiskers.ID, listed)
		}
	}

	// 4) petId inexistente: la adopción igual devuelve 201 y queda
	// registrada (contrato fire-and-forget, sin validación de existencia)
	{
		st, body := doReq(t, ts.URL, "POST", "/api/adoptions", map[string]any{
			"petId":    "no-such-pet",
			"userName": "Luis",
			"petName":  "Ghost",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 adoption with bogus petId, got %d body=%s", st, string(body))
		}

		n, err := adoptionRepo.Count(context.Background())
		if err != nil {
			t.Fatalf("count adoptions: %v", err)
		}
		if n != 2 {
			t.Fatalf("expected 2 adoption records, got %d", n)
		}
	}

	// 5) Campos faltantes => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/adoptions", map[string]any{
			"petId": whiskers.ID,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for missing fields, got %d", st)
		}
	}
}

func TestHTTP_ConcurrentAdoptionsSamePet(t *testing.T) {
	petRepo := mem.NewPetRepo()
	adoptionRepo := mem.NewAdoptionRepo(petRepo)

	petsSvc := pets.NewService(petRepo)
	rocky, err := petsSvc.Create(context.Background(), pets.CreateInput{
		Name: "Rocky", Type: "dog", Age: "4 years", Bio: "Calm and patient.",
	})
	if err != nil {
		t.Fatalf("create pet: %v", err)
	}

	ts := httptest.NewServer(router.New(router.Options{
		Pets:      petRepo,
		Adoptions: adoptionRepo,
	}))
	defer ts.Close()

	// Dos pedidos concurrentes sobre la misma mascota: no hay guard de
	// idempotencia, ambos completan 201 y quedan DOS registros.
	var wg sync.WaitGroup
	statuses := make([]int, 2)
	errs := make([]error, 2)
	for i := range statuses {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			b, _ := json.Marshal(map[string]any{
				"petId":    rocky.ID,
				"userName": "User",
				"petName":  rocky.Name,
			})
			resp, err := http.Post(ts.URL+"/api/adoptions", "application/json", bytes.NewReader(b))
			if err != nil {
				errs[i] = err
				return
			}
			defer resp.Body.Close()
			statuses[i] = resp.StatusCode
		}(i)
	}
	wg.Wait()

	for i, st := range statuses {
		if errs[i] != nil {
			t.Fatalf("concurrent adoption %d: %v", i, errs[i])
		}
		if st != http.StatusCreated {
			t.Fatalf("concurrent adoption %d: expected 201, got %d", i, st)
		}
	}

	p, err := petRepo.GetByID(context.Background(), rocky.ID)
	if err != nil {
		t.Fatalf("get pet: %v", err)
	}
	if !p.Adopted {
		t.Fatalf("expected pet adopted after concurrent requests")
	}

	n, err := adoptionRepo.Count(context.Background())
	if err != nil {
		t.Fatalf("count adoptions: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 adoption records for one pet, got %d", n)
	}
}

func TestHTTP_ContactValidation(t *testing.T) {
	ts := httptest.NewServer(router.New(router.Options{}))
	defer ts.Close()

	// interest fuera del enum => 400
	{
		st, body := doReq(t, ts.URL, "POST", "/api/contact", map[string]any{
			"name":     "Ana",
			"email":    "ana@example.com",
			"interest": "not-a-real-value",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for bad interest, got %d body=%s", st, string(body))
		}
	}

	// payload válido => 201 con mensaje de confirmación
	{
		st, body := doReq(t, ts.URL, "POST", "/api/contact", map[string]any{
			"name":     "Ana",
			"email":    "ana@example.com",
			"interest": "adopt",
			"message":  "I'd love to help",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 contact, got %d body=%s", st, string(body))
		}

		var resp struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Message == "" {
			t.Fatalf("expected confirmation message, body=%s", string(body))
		}
	}
}

func TestHTTP_ChatAndHealth(t *testing.T) {
	ts := httptest.NewServer(router.New(router.Options{}))
	defer ts.Close()

	{
		st, body := doReq(t, ts.URL, "POST", "/api/chat", map[string]any{
			"message": "hello, what food should I feed my dog",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 chat, got %d body=%s", st, string(body))
		}

		var resp struct {
			Reply string `json:"reply"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Reply != "Woof! Hello there! How can I help you with your pet today?" {
			t.Fatalf("expected greeting reply (first match wins), got %q", resp.Reply)
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/api/health", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 health, got %d", st)
		}

		var resp struct {
			Status    string `json:"status"`
			Database  string `json:"database"`
			Timestamp string `json:"timestamp"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Status != "OK" || resp.Database != "Connected" || resp.Timestamp == "" {
			t.Fatalf("unexpected health body=%s", string(body))
		}
	}
}

func TestHTTP_StaticClientFallback(t *testing.T) {
	dir := t.TempDir()
	index := []byte("<html><body>PawKind</body></html>")
	if err := os.WriteFile(filepath.Join(dir, "index.html"), index, 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}

	ts := httptest.NewServer(router.New(router.Options{StaticDir: dir}))
	defer ts.Close()

	// Cualquier GET fuera de /api cae al index (routing del cliente).
	for _, path := range []string{"/", "/stories", "/adopt/bella"} {
		st, body := doReq(t, ts.URL, "GET", path, nil)
		if st != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, st)
		}
		if !bytes.Equal(bytes.TrimSpace(body), index) {
			t.Fatalf("GET %s: expected index document, got %s", path, string(body))
		}
	}

	// Rutas /api desconocidas siguen siendo 404, no index.
	st, _ := doReq(t, ts.URL, "GET", "/api/unknown", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown api route, got %d", st)
	}
}

type petJSON struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Adopted bool   `json:"adopted"`
}

func decodePets(t *testing.T, body []byte) []petJSON {
	t.Helper()

	var out []petJSON
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode pets: %v body=%s", err, string(body))
	}
	return out
}

func doReq(t *testing.T, baseURL, method, path string, payload map[string]any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b
}
