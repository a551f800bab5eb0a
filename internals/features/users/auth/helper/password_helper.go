package helper

import "golang.org/x/crypto/bcrypt"

// HashPassword menghasilkan bcrypt hash untuk password plaintext.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPasswordHash membandingkan hash tersimpan dengan password input.
func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
