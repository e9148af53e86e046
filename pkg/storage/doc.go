// Package storage uploads files to S3-compatible object storage.
//
// It is the bucket side of publishing: put an object with its content type
// and cache-control header, list what is under a prefix, and delete keys.
//
//	store, err := storage.New(storage.Config{
//		Bucket:    "www.turbohomes.com",
//		AccessKey: os.Getenv("S3_ACCESS_KEY"),
//		SecretKey: os.Getenv("S3_SECRET_KEY"),
//	})
//	if err != nil {
//		return err
//	}
//
//	err = store.Put(ctx, storage.Object{
//		Key:          "en/index.html",
//		Size:         int64(len(body)),
//		ContentType:  storage.ContentType("en/index.html"),
//		CacheControl: "public, max-age=300",
//	}, bytes.NewReader(body))
//
// # Errors
//
// Operations return errors wrapping the package sentinels, so callers match
// with errors.Is:
//
//	if errors.Is(err, storage.ErrAccessDenied) {
//		// check credentials
//	}
//
// Endpoint and PathStyle point the client at MinIO, R2 or any other
// S3-compatible service.
package storage
