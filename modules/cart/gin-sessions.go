package cart

import (
	"encoding/json"

	"github.com/gin-gonic/contrib/sessions"
)

type GinGonicSession struct {
	Session sessions.Session
}

func (gcs GinGonicSession) Restore(where interface{}) error {
	data := gcs.Session.Get("cart")
	if data == nil {
		return nil
	}

	encoded, ok := data.(string)
	if !ok {
		return nil
	}

	return json.Unmarshal([]byte(encoded), where)
}

func (gcs GinGonicSession) Save(data interface{}) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}

	gcs.Session.Set("cart", string(encoded))
	return gcs.Session.Save()
}
