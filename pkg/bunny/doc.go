// Package bunny is a thin client for the Bunny Stream video API.
//
// A Client is scoped to one video library and wraps the library's REST
// surface: video and collection management, uploads, captions,
// thumbnails, transcription, encoding controls and statistics.
// Responses are returned as decoded JSON (map[string]any / []any)
// without an intermediate model layer, so the client keeps working as
// the API grows fields.
//
//	client := bunny.NewClient(bunny.Options{
//		AccessKey: os.Getenv("BUNNY_ACCESS_KEY"),
//		LibraryID: os.Getenv("BUNNY_LIBRARY_ID"),
//	})
//
//	video, err := client.GetVideo(ctx, "d2cd0819-...")
//
// Failures are typed. A request that never reached the API returns a
// *TransportError; API rejections map by status code onto
// *AuthenticationError, *VideoNotFoundError, *CollectionNotFoundError,
// *NotFoundError, *BadRequestError and *RequestError. Inspect them
// with errors.As:
//
//	var notFound *bunny.VideoNotFoundError
//	if errors.As(err, &notFound) {
//		log.Printf("gone: %s", notFound.ID)
//	}
//
// The client never retries and follows no redirects; both stay under
// the caller's control.
package bunny
