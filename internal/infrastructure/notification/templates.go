package notification

import "text/template"

var welcomeTmpl = template.Must(template.New("welcome").Parse(`Hi {{.Name}},

Welcome to {{.Brand}}, your platform for educational resources in Guyana.

Getting started:
1. Browse the store for Ministry-approved guides.
2. Try the AI Lesson Planner (subscription required).
3. Complete your profile.

Regards,
The {{.Brand}} Team
`))

var productAlertTmpl = template.Must(template.New("product_alert").Parse(`Hi {{.Name}},

A new resource is available in the store: {{.Product.Title}} ({{.Product.Category}}).

{{.Product.Description}}

Regards,
The {{.Brand}} Team
`))

var decisionTmpl = template.Must(template.New("decision").Parse(`Dear {{.Name}},
{{if .Approved}}{{if .Subscription}}
Your MMG payment has been verified and your subscription is now ACTIVE.
You have full access to the AI Lesson Planner: {{.BaseURL}}/lesson-planner
{{else}}
Your MMG payment has been verified and order #{{.ShortID}} is APPROVED.
Your resources are in "My Digital Library": {{.BaseURL}}/profile
{{end}}{{else}}
We could not verify your recent payment transaction ({{.TransactionID}}).
Request status: DECLINED.

Please make sure the correct amount was sent to the correct MMG number.
If you believe this is an error, reply to this email with a screenshot of your receipt.
{{end}}
Thank you for choosing {{.Brand}}.

Best regards,
{{.Brand}} Management Team
`))
