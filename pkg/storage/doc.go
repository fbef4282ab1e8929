// Package storage is the sink for generated artifacts that should outlive the
// process: images, audio clips and synthetic files.
//
// The Storage interface has two implementations:
//
//   - LocalStorage writes below a base directory. Keys are confined to that
//     directory and every Put is atomic (temp file + rename).
//   - S3Storage uploads to Amazon S3 or an S3-compatible service through
//     aws-sdk-go-v2. Tests inject a fake S3Client with WithS3Client.
//
// WriteFileAtomic is the primitive behind every "write to path" operation in
// soupkit: the destination either receives the complete content or is left
// untouched.
//
//	st, _ := storage.NewLocalStorage("out", "/files/")
//	obj, err := st.Put(ctx, "img/noise.png", bytes.NewReader(png), "")
//	fmt.Println(obj.URL) // /files/img/noise.png
package storage
