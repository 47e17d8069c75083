// Package minio serves reflection files from MinIO and other S3-compatible
// object stores (Ceph, Garage, SeaweedFS) through the MinIO client.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "beamtime", "run17/")
//	ds, err := crystio.ReadStills(ctx, names, cell, sg, crystio.WithBlobStore(store))
package minio
