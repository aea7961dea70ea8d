package routes

import (
	"log"

	"github.com/Lawhacknifemi/real-estate/utils"
	"github.com/kataras/iris/v12"
)

type SendMailInput struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	FullNames   string `json:"full_names"`
	Message     string `json:"message"`
	AgentEmail  string `json:"agent_email"`
}

// SendMail relays a contact-form submission to the listing agent through the
// transactional mail API. No authentication; the form is public.
func SendMail(ctx iris.Context) {
	var input SendMailInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if err := utils.SendContactMail(input.FullNames, input.Email, input.PhoneNumber, input.Message, input.AgentEmail); err != nil {
		log.Printf("[MAIL] contact relay failed: %v", err)
		ctx.StopWithJSON(iris.StatusInternalServerError, iris.Map{"result": "error"})
		return
	}

	ctx.JSON(iris.Map{"result": "success"})
}
