//go:build integration

package integration

import (
	"errors"
	"os"
	"strconv"
	"sync"
	"testing"

	"github.com/joho/godotenv"
	securetx "github.com/quantaledger/securetx-go"
)

var soakRecords = 1000

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	if v := os.Getenv("SECURETX_SOAK_RECORDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			os.Stderr.WriteString("Invalid SECURETX_SOAK_RECORDS: " + v + "\n")
			os.Exit(1)
		}
		soakRecords = n
	}

	os.Exit(m.Run())
}

// TestSignatureSizeSoak constructs soakRecords records (default 1,000) and
// checks that every signature respects the scheme maximum and every record
// verifies with its own key and signature.
func TestSignatureSizeSoak(t *testing.T) {
	keypair, err := securetx.GenerateSigningKeypair()
	if err != nil {
		t.Fatalf("GenerateSigningKeypair() error = %v", err)
	}
	defer keypair.Close()

	for i := 0; i < soakRecords; i++ {
		rec, err := securetx.Construct("alice", "bob", uint64(i), 1700000000, uint64(i), keypair)
		if err != nil {
			t.Fatalf("Construct(%d) error = %v", i, err)
		}

		if len(rec.Signature) > securetx.MaxSignatureSize {
			t.Fatalf("record %d: signature size %d exceeds %d", i, len(rec.Signature), securetx.MaxSignatureSize)
		}

		ok, err := securetx.Verify(rec, rec.PublicKey, rec.Signature)
		if err != nil || !ok {
			t.Fatalf("record %d: Verify() = %v, %v", i, ok, err)
		}

		if err := rec.Close(); err != nil {
			t.Fatalf("record %d: Close() error = %v", i, err)
		}
	}
}

// TestRegistryStress hammers one registry from many goroutines and checks
// that each nonce is accepted exactly once in total.
func TestRegistryStress(t *testing.T) {
	reg := securetx.NewNonceRegistry()

	const workers = 32
	nonces := soakRecords

	var wg sync.WaitGroup
	var accepted int64
	var mu sync.Mutex

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := int64(0)
			for n := 0; n < nonces; n++ {
				err := reg.CheckAndRegister(uint64(n))
				switch {
				case err == nil:
					local++
				case errors.Is(err, securetx.ErrNonceReused):
				default:
					t.Errorf("CheckAndRegister(%d) unexpected error = %v", n, err)
					return
				}
			}
			mu.Lock()
			accepted += local
			mu.Unlock()
		}()
	}
	wg.Wait()

	if accepted != int64(nonces) {
		t.Errorf("accepted = %d, want %d", accepted, nonces)
	}
	if reg.Len() != nonces {
		t.Errorf("registry Len() = %d, want %d", reg.Len(), nonces)
	}
}
