package services

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEncryptionKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestNewEncryptor(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantNil bool
		wantErr bool
	}{
		{name: "empty key disables encryption", key: "", wantNil: true},
		{name: "valid key", key: testEncryptionKey},
		{name: "not hex", key: "not-hex", wantNil: true, wantErr: true},
		{name: "aes-128 length", key: "0123456789abcdef0123456789abcdef", wantNil: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := NewEncryptor(tt.key)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantNil, enc == nil)
		})
	}
}

func TestEncryptor_SealOpenField(t *testing.T) {
	enc, err := NewEncryptor(testEncryptionKey)
	require.NoError(t, err)

	sealed, err := enc.SealField(FieldContactPhone, "+57 300 123 4567")
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "300 123")

	assert.Equal(t, "+57 300 123 4567", enc.OpenField(FieldContactPhone, sealed))
}

func TestEncryptor_FieldBinding(t *testing.T) {
	enc, err := NewEncryptor(testEncryptionKey)
	require.NoError(t, err)

	sealed, err := enc.SealField(FieldContactPhone, "+573001234567")
	require.NoError(t, err)

	// opened under the wrong column the value stays sealed
	assert.Equal(t, string(sealed), enc.OpenField(FieldContactMessage, sealed))
}

func TestEncryptor_UniqueNonces(t *testing.T) {
	enc, err := NewEncryptor(testEncryptionKey)
	require.NoError(t, err)

	a, _ := enc.SealField(FieldContactMessage, "same message")
	b, _ := enc.SealField(FieldContactMessage, "same message")
	assert.NotEqual(t, a, b)
}

func TestEncryptor_NilStoresPlaintext(t *testing.T) {
	var enc *Encryptor

	sealed, err := enc.SealField(FieldContactPhone, "hello")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), sealed)
	assert.Equal(t, "hello", enc.OpenField(FieldContactPhone, sealed))
}

func TestEncryptor_PlaintextRowsPassThrough(t *testing.T) {
	enc, err := NewEncryptor(testEncryptionKey)
	require.NoError(t, err)

	for _, raw := range []string{"hi", "I need a quote for twelve laptops, please call"} {
		assert.Equal(t, raw, enc.OpenField(FieldContactMessage, []byte(raw)))
	}
}

func TestEncryptor_WrongKey(t *testing.T) {
	enc1, _ := NewEncryptor(testEncryptionKey)
	key2 := make([]byte, 32)
	key2[0] = 0xff
	enc2, _ := NewEncryptor(hex.EncodeToString(key2))

	sealed, _ := enc1.SealField(FieldContactMessage, "secret")
	assert.Equal(t, string(sealed), enc2.OpenField(FieldContactMessage, sealed))
}
