// Package rostersdk holds the wire types of the roster account API and a
// small Go client for it.
//
// The server handlers encode exactly these types, so a client built on this
// package stays in step with the service.
//
//	c := rostersdk.NewSDKClient("http://localhost:8080")
//	sess, err := c.AuthenticateWithPassword(ctx, "ada@example.com", "hunter22")
//	if err != nil {
//		var apiErr *rostersdk.APIError
//		if errors.As(err, &apiErr) && apiErr.Code == rostersdk.ErrorCodeInvalidCredentials {
//			// wrong email or password
//		}
//	}
//	created, err := sess.CreateCompany(ctx, "Acme")
package rostersdk
