package adapters

import "testing"

func TestPasswordService_HashAndVerify(t *testing.T) {
	service := NewPasswordService()

	hash, err := service.HashPassword("senha-secreta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "senha-secreta" {
		t.Fatal("hash must not equal the plain password")
	}

	if err := service.VerifyPassword(hash, "senha-secreta"); err != nil {
		t.Errorf("expected the correct password to verify, got %v", err)
	}

	if err := service.VerifyPassword(hash, "senha-errada"); err == nil {
		t.Error("expected verification to fail for a wrong password")
	}
}

func TestPasswordService_HashesAreSalted(t *testing.T) {
	service := NewPasswordService()

	first, err := service.HashPassword("senha")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := service.HashPassword("senha")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Error("expected two hashes of the same password to differ")
	}
}
