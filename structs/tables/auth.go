package tables

// AdminCredential is the single store-backed admin login record.
// EncryptedPassword holds the reversed-base64 form of the plaintext password;
// it is an obfuscation kept for compatibility with existing rows, not a hash.
type AdminCredential struct {
	tableName         struct{} `bun:"table:admin_credentials,alias:ac"`
	Username          string   `bun:"username,pk" json:"username"`
	Password          string   `bun:"password" json:"-"`
	EncryptedPassword string   `bun:"encrypted_password" json:"-"`
}
