package credential

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !Verify("s3cret", hash) {
		t.Fatalf("expected hash to verify against its input")
	}
}

func TestHash_FreshSaltPerCall(t *testing.T) {
	first, err := Hash("same-input")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := Hash("same-input")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same input must differ")
	}
	if !Verify("same-input", first) || !Verify("same-input", second) {
		t.Fatalf("both hashes must verify against the input")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	hash, err := Hash("right")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if Verify("wrong", hash) {
		t.Fatalf("wrong password must not verify")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	if Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must not verify")
	}
}
