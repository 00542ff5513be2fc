package uploadControllers

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taimoorarshad43/PishPosh2-Backend/middleware"
	"github.com/taimoorarshad43/PishPosh2-Backend/session"
)

const testSecret = "test-secret"

func newTestServer() (*gin.Engine, *session.MemoryStore) {
	gin.SetMode(gin.TestMode)

	store := session.NewMemoryStore()
	manager := session.NewManager(store, testSecret, time.Hour, session.CookieOptions{})

	r := gin.New()
	r.Use(middleware.Session(manager))
	// The validation paths under test never reach the database.
	r.POST("/upload/:userid", UploadProduct(nil))
	return r, store
}

func seedSession(t *testing.T, store *session.MemoryStore, data session.Data) *http.Cookie {
	t.Helper()

	token, err := session.NewToken()
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}
	raw, err := json.Marshal(&data)
	if err != nil {
		t.Fatalf("marshal session: %v", err)
	}
	if err := store.Save(context.Background(), token, raw, time.Hour); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	return &http.Cookie{
		Name:  session.CookieName,
		Value: session.Sign(token, []byte(testSecret)),
	}
}

func multipartForm(t *testing.T, fields map[string]string, fileField, filename string, file []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if fileField != "" {
		fw, err := w.CreateFormFile(fileField, filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write(file); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestUploadProductRequiresLogin(t *testing.T) {
	r, _ := newTestServer()

	body, contentType := multipartForm(t, map[string]string{}, "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/upload/1", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestUploadProductFieldValidation(t *testing.T) {
	tests := []struct {
		name      string
		fields    map[string]string
		withFile  bool
		wantError string
	}{
		{
			name:      "numeric product name",
			fields:    map[string]string{"productName": "12345", "productDescription": "A nice vase", "productPrice": "10"},
			withFile:  true,
			wantError: "Invalid Product Name",
		},
		{
			name:      "missing description",
			fields:    map[string]string{"productName": "Vase", "productPrice": "10"},
			withFile:  true,
			wantError: "Invalid Product Description",
		},
		{
			name:      "non-positive price",
			fields:    map[string]string{"productName": "Vase", "productDescription": "A nice vase", "productPrice": "0"},
			withFile:  true,
			wantError: "Invalid Product Price",
		},
		{
			name:      "missing image",
			fields:    map[string]string{"productName": "Vase", "productDescription": "A nice vase", "productPrice": "10"},
			withFile:  false,
			wantError: "Missing Image File",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, store := newTestServer()
			cookie := seedSession(t, store, session.Data{UserID: 1})

			fileField, filename := "", ""
			var file []byte
			if tc.withFile {
				fileField, filename, file = "productImage", "vase.png", testPNG(t)
			}
			body, contentType := multipartForm(t, tc.fields, fileField, filename, file)

			req := httptest.NewRequest(http.MethodPost, "/upload/1", body)
			req.Header.Set("Content-Type", contentType)
			req.AddCookie(cookie)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
			}
			if !bytes.Contains(w.Body.Bytes(), []byte(tc.wantError)) {
				t.Errorf("body = %s, want %q", w.Body.String(), tc.wantError)
			}
		})
	}
}

func TestUploadProductRejectsUnknownFileType(t *testing.T) {
	r, store := newTestServer()
	cookie := seedSession(t, store, session.Data{UserID: 1})

	fields := map[string]string{"productName": "Vase", "productDescription": "A nice vase", "productPrice": "10"}
	body, contentType := multipartForm(t, fields, "productImage", "vase.gif", testPNG(t))

	req := httptest.NewRequest(http.MethodPost, "/upload/1", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("Invalid File Type")) {
		t.Errorf("body = %s, want Invalid File Type", w.Body.String())
	}
}

func TestNormalizeImage(t *testing.T) {
	normalized, err := normalizeImage(testPNG(t), "png")
	if err != nil {
		t.Fatalf("normalizeImage: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(normalized))
	if err != nil {
		t.Fatalf("decode normalized image: %v", err)
	}
	bounds := decoded.Bounds()
	if bounds.Dx() != thumbnailWidth || bounds.Dy() != thumbnailHeight {
		t.Errorf("normalized size = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), thumbnailWidth, thumbnailHeight)
	}
}

func TestNormalizeImageRejectsGarbage(t *testing.T) {
	if _, err := normalizeImage([]byte("not an image"), "png"); err == nil {
		t.Fatal("normalizeImage accepted garbage input")
	}
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"12345", true},
		{"12-34", true},
		{"Vase", false},
		{"Vase 12", false},
		{"", false},
		{"-", false},
	}

	for _, tc := range tests {
		if got := isNumeric(tc.in); got != tc.want {
			t.Errorf("isNumeric(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func testPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}
