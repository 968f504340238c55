package zotero

import (
	"strconv"

	"emperror.dev/errors"
	"github.com/goccy/go-json"
)

type WriteResponseFailed struct {
	Key     string `json:"key"`
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// WriteResponse is the reply to a multi-object write. All maps are keyed by the
// index of the object in the request.
type WriteResponse struct {
	Success    map[string]string              `json:"success"`
	Unchanged  map[string]string              `json:"unchanged"`
	Failed     map[string]WriteResponseFailed `json:"failed"`
	Successful map[string]Item                `json:"successful"`
}

func DecodeWriteResponse(data []byte) (*WriteResponse, error) {
	res := &WriteResponse{}
	if err := json.Unmarshal(data, res); err != nil {
		return nil, errors.Wrapf(err, "cannot unmarshal write response %s", string(data))
	}
	return res, nil
}

// Outcome returns the key of the object at index, or the reason it was rejected.
func (res *WriteResponse) Outcome(index int) (string, error) {
	id := strconv.Itoa(index)
	if key, ok := res.Success[id]; ok {
		return key, nil
	}
	if key, ok := res.Unchanged[id]; ok {
		return key, nil
	}
	if fail, ok := res.Failed[id]; ok {
		return fail.Key, errors.WithStack(&WriteFailedError{
			Index:   index,
			Key:     fail.Key,
			Code:    fail.Code,
			Message: fail.Message,
		})
	}
	return "", errors.Errorf("invalid index %v", index)
}

// Acknowledge applies the response to the items of the request, in request
// order. Written items get the version the service assigned. The returned error
// combines all rejected objects.
func (res *WriteResponse) Acknowledge(items []*Item) error {
	var errs []error
	for i, item := range items {
		key, err := res.Outcome(i)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if key != item.Key {
			errs = append(errs, errors.Errorf("invalid key %s. source key: %s", key, item.Key))
			continue
		}
		if written, ok := res.Successful[strconv.Itoa(i)]; ok {
			item.Acknowledge(written.Version)
		}
	}
	return errors.Combine(errs...)
}
