package tlsroots

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewPool(t *testing.T) {
	pool, err := NewPool()
	if err != nil {
		t.Fatalf("NewPool() error = %v", err)
	}
	if pool == nil {
		t.Fatal("NewPool() returned nil")
	}
	if pool.Pool() == nil {
		t.Fatal("Pool() returned nil")
	}
}

func TestNewEmptyPool(t *testing.T) {
	pool := NewEmptyPool()
	if pool == nil {
		t.Fatal("NewEmptyPool() returned nil")
	}
	if pool.Pool() == nil {
		t.Fatal("Pool() returned nil")
	}
}

func TestAddCertPEM(t *testing.T) {
	pool := NewEmptyPool()

	certPEM := generateTestCertPEM(t)

	err := pool.AddCertPEM(certPEM)
	if err != nil {
		t.Fatalf("AddCertPEM() error = %v", err)
	}
}

func TestAddCertPEM_NoCerts(t *testing.T) {
	pool := NewEmptyPool()

	// Empty PEM data
	err := pool.AddCertPEM([]byte{})
	if err != ErrNoCertsFound {
		t.Errorf("AddCertPEM() error = %v, want %v", err, ErrNoCertsFound)
	}

	// PEM data with no certificates
	err = pool.AddCertPEM([]byte("not a certificate"))
	if err != ErrNoCertsFound {
		t.Errorf("AddCertPEM() error = %v, want %v", err, ErrNoCertsFound)
	}
}

func TestAddCertPEM_InvalidCert(t *testing.T) {
	pool := NewEmptyPool()

	invalidPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "CERTIFICATE",
		Bytes: []byte("invalid certificate data"),
	})

	err := pool.AddCertPEM(invalidPEM)
	if err == nil {
		t.Error("AddCertPEM() expected error for invalid certificate")
	}
}

func TestAddCertPEM_MultipleCerts(t *testing.T) {
	pool := NewEmptyPool()

	// A bundle with two certificates
	cert1 := generateTestCertPEM(t)
	cert2 := generateTestCertPEM(t)
	combined := append(cert1, cert2...)

	err := pool.AddCertPEM(combined)
	if err != nil {
		t.Fatalf("AddCertPEM() error = %v", err)
	}
}

func TestAddCertFile(t *testing.T) {
	pool := NewEmptyPool()

	tmpDir := t.TempDir()
	certFile := filepath.Join(tmpDir, "test.crt")

	certPEM := generateTestCertPEM(t)
	if err := os.WriteFile(certFile, certPEM, 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	err := pool.AddCertFile(certFile)
	if err != nil {
		t.Fatalf("AddCertFile() error = %v", err)
	}
}

func TestAddCertFile_NotFound(t *testing.T) {
	pool := NewEmptyPool()

	err := pool.AddCertFile("/nonexistent/path/cert.pem")
	if err == nil {
		t.Error("AddCertFile() expected error for nonexistent file")
	}
}

func TestTLSConfig(t *testing.T) {
	pool := NewEmptyPool()

	config := pool.TLSConfig()
	if config == nil {
		t.Fatal("TLSConfig() returned nil")
	}
	if config.RootCAs != pool.Pool() {
		t.Error("TLSConfig().RootCAs != pool.Pool()")
	}
	if config.MinVersion != tls.VersionTLS12 {
		t.Errorf("TLSConfig().MinVersion = %v, want TLS 1.2", config.MinVersion)
	}
}

func TestTLSConfig_TrustsAddedRoots(t *testing.T) {
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	certPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "CERTIFICATE",
		Bytes: ts.Certificate().Raw,
	})

	pool := NewEmptyPool()
	if err := pool.AddCertPEM(certPEM); err != nil {
		t.Fatalf("AddCertPEM() error = %v", err)
	}

	client := &http.Client{
		Transport: &http.Transport{TLSClientConfig: pool.TLSConfig()},
	}
	resp, err := client.Get(ts.URL)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	resp.Body.Close()
}

func TestTLSConfig_RejectsUnknownServer(t *testing.T) {
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	// Empty pool, so the test server's certificate is untrusted.
	pool := NewEmptyPool()

	client := &http.Client{
		Transport: &http.Transport{TLSClientConfig: pool.TLSConfig()},
	}
	if _, err := client.Get(ts.URL); err == nil {
		t.Error("Get() should fail when the server certificate is not trusted")
	}
}

// generateTestCertPEM generates a self-signed certificate in PEM format.
func generateTestCertPEM(t *testing.T) []byte {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey() error = %v", err)
	}

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject: pkix.Name{
			Organization: []string{"Test Org"},
			CommonName:   "test.local",
		},
		NotBefore:             time.Now(),
		NotAfter:              time.Now().Add(24 * time.Hour),
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}

	certDER, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("CreateCertificate() error = %v", err)
	}

	return pem.EncodeToMemory(&pem.Block{
		Type:  "CERTIFICATE",
		Bytes: certDER,
	})
}
