package payments

import (
	"html/template"

	"github.com/kennygrant/sanitize"
	"github.com/tryanzu/cashapp/core/templates"
)

var fieldsTemplate = templates.Must("cashapp-fields", `{{ if .Description }}{{ autop .Description }}{{ end }}<fieldset id="{{ .Id }}-payment-form" class="{{ .Id }}-form payment-form" style="background:transparent;">
<div class="form-row form-row-wide"><label for="{{ .Field }}">Your cashapp id <span class="required">*</span></label>
<input name="{{ .Field }}" id="{{ .Field }}" type="text" autocomplete="off">
</div>
<div class="clear"></div>
IMPORTANT: Send payment to <span class="cashapp-id">{{ .Recipient }}</span> to complete payment.  Include your order id{{ if not .HasOrder }} (will be shown on the next page){{ end }} in the notes for quickest processing.
<div class="clear"></div></fieldset>
`)

// RenderFields builds the checkout fragment for the cashapp gateway. The
// description paragraph is only present when a description is configured.
func RenderFields(s Settings, hasOrder bool) (template.HTML, error) {
	var description string
	if s.Description != "" {
		safe, err := sanitize.HTMLAllowing(s.Description)
		if err != nil {
			return "", err
		}

		description = safe
	}

	return templates.Render(fieldsTemplate, map[string]interface{}{
		"Id":          CASHAPP,
		"Field":       FIELD_CUSTOMER_HANDLE,
		"Description": description,
		"Recipient":   s.RecipientHandle,
		"HasOrder":    hasOrder,
	})
}
