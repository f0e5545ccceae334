package ingest

// Document is one JSON object submitted to the API. Payloads stay untyped
// on the client; the schema files and the server decide what is valid.
type Document map[string]interface{}

// ItemStatus classifies the outcome of one batch item.
type ItemStatus string

const (
	// StatusSucceeded means the server accepted the item.
	StatusSucceeded ItemStatus = "succeeded"
	// StatusRejected means the item was turned away before or by the
	// server: a schema violation or an HTTP 400. The batch continues.
	StatusRejected ItemStatus = "rejected"
	// StatusFailed means the item could not be processed: missing schema
	// file, transport fault, unexpected status or undecodable response.
	StatusFailed ItemStatus = "failed"
)

// ItemResult is the outcome of processing a single batch item. Exactly one
// is produced per item; Index ties it back to the item's position in the
// submitted batch regardless of completion order.
type ItemResult struct {
	Index    int
	Document Document
	Status   ItemStatus

	// Response is the decoded server body on success, nil otherwise.
	Response interface{}

	// HTTPStatus and Body carry the server's answer for rejections and
	// unexpected statuses. HTTPStatus is zero when the item never reached
	// the network (schema rejection, transport fault).
	HTTPStatus int
	Body       string

	// Err holds the failure or rejection detail. Nil on success.
	Err error
}
