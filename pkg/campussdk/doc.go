// Package campussdk is a Go client for the campus Q&A API.
//
// Anonymous operations (listing and reading queries, sections, health) hang
// off Client. Signup and Login return a Session that attaches the bearer
// token to every request it makes:
//
//	c := campussdk.NewClient("http://localhost:8080")
//	s, err := c.Login(ctx, "student@college.edu", "secret1")
//	if err != nil {
//		return err
//	}
//	q, err := s.CreateQuery(ctx, campussdk.CreateQueryRequest{
//		Section:     "DSA",
//		Title:       "Heap vs BST",
//		Description: "When is a heap the better choice?",
//	})
//
// Non-2xx responses are returned as *APIError; use CodeOf or StatusCodeOf to
// branch on them. Request types expose Validate for client-side checks using
// the same rules the server applies.
package campussdk
