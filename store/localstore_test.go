package store

import "testing"

func TestLocalStoreRoundTrip(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New error = %v", err)
	}

	in := CompanyInfo{
		CompanyName:   "EDCO Heating & Air",
		LicenseNumber: "#837114",
		Phone:         "(408) 425-3800",
		Email:         "info@edcoheating.com",
	}
	if err := s.Set(KeyCompanyInfo, in); err != nil {
		t.Fatalf("Set error = %v", err)
	}

	var out CompanyInfo
	ok, err := s.Get(KeyCompanyInfo, &out)
	if err != nil {
		t.Fatalf("Get error = %v", err)
	}
	if !ok {
		t.Fatal("Get ok = false after Set")
	}
	if out != in {
		t.Errorf("Get = %+v, want %+v", out, in)
	}
}

func TestLocalStoreMissingKey(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New error = %v", err)
	}

	var out CompanyInfo
	ok, err := s.Get(KeyCompanyInfo, &out)
	if err != nil {
		t.Fatalf("Get error = %v", err)
	}
	if ok {
		t.Error("Get ok = true for missing key")
	}
	if out != (CompanyInfo{}) {
		t.Errorf("missing key touched the destination: %+v", out)
	}
}

func TestLocalStoreDelete(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New error = %v", err)
	}

	if err := s.Set(KeyUser, map[string]string{"id": "u1"}); err != nil {
		t.Fatalf("Set error = %v", err)
	}
	if err := s.Delete(KeyUser); err != nil {
		t.Fatalf("Delete error = %v", err)
	}

	var out map[string]string
	if ok, _ := s.Get(KeyUser, &out); ok {
		t.Error("key still present after Delete")
	}

	// Deleting again is a no-op
	if err := s.Delete(KeyUser); err != nil {
		t.Errorf("second Delete error = %v", err)
	}
}

func TestLocalStoreOverwrite(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New error = %v", err)
	}

	if err := s.Set(KeyCompanyInfo, CompanyInfo{CompanyName: "Old Name"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(KeyCompanyInfo, CompanyInfo{CompanyName: "New Name"}); err != nil {
		t.Fatal(err)
	}

	var out CompanyInfo
	if _, err := s.Get(KeyCompanyInfo, &out); err != nil {
		t.Fatal(err)
	}
	if out.CompanyName != "New Name" {
		t.Errorf("CompanyName = %q, want New Name", out.CompanyName)
	}
}
