package usecase

import "html/template"

const brandName = "Turma do Vandre"

type testEmailView struct {
	Brand  string
	SentAt string
}

type bookingConfirmationView struct {
	Brand            string
	BookingID        string
	FullName         string
	CPF              string
	RG               string
	Phone            string
	Email            string
	BirthDate        string
	BoardingLocation string
	City             string
	PackageName      string
	Price            string
	TravelMonth      string
	TravelDate       string
	ReturnDate       string
	TravelTime       string
	SentAt           string
}

var testEmailTemplate = template.Must(template.New("test-email").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2c3e50;">Teste de Email - {{.Brand}}</h2>
  <p>Olá!</p>
  <p>Este é um email de teste enviado pelo sistema da <strong>{{.Brand}}</strong>.</p>
  <p>Se você recebeu este email, significa que o sistema de envio de emails está funcionando corretamente!</p>
  <hr style="border: 1px solid #ecf0f1; margin: 20px 0;">
  <p style="color: #7f8c8d; font-size: 12px;">Este email foi enviado em: {{.SentAt}}</p>
  <p style="color: #7f8c8d; font-size: 12px;">Sistema de gerenciamento de viagens - {{.Brand}}</p>
</div>
`))

var bookingConfirmationTemplate = template.Must(template.New("booking-confirmation").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 700px; margin: 0 auto; background-color: #f8f9fa; padding: 20px;">
  <div style="background-color: white; padding: 30px; border-radius: 10px;">
    <div style="text-align: center; margin-bottom: 30px; border-bottom: 3px solid #27ae60; padding-bottom: 20px;">
      <h1 style="color: #2c3e50; margin: 0; font-size: 28px;">Reserva Confirmada!</h1>
      <h2 style="color: #27ae60; margin: 10px 0 0 0; font-size: 22px;">{{.Brand}}</h2>
    </div>

    <div style="background-color: #d4edda; border: 1px solid #c3e6cb; border-radius: 5px; padding: 15px; margin-bottom: 25px;">
      <p style="color: #155724; margin: 0; font-size: 16px; text-align: center;">
        <strong>Parabéns {{.FullName}}!</strong><br>
        Sua reserva foi confirmada com sucesso!
      </p>
    </div>

    <h3 style="color: #2c3e50; border-bottom: 2px solid #3498db; padding-bottom: 10px;">Detalhes da Viagem</h3>
    <table style="width: 100%; border-collapse: collapse; margin-bottom: 25px;">
      <tr><td style="padding: 8px 0; font-weight: bold; width: 40%;">Destino:</td><td>{{.PackageName}}</td></tr>
      <tr><td style="padding: 8px 0; font-weight: bold;">Valor:</td><td style="color: #e74c3c; font-weight: bold;">{{.Price}}</td></tr>
      <tr><td style="padding: 8px 0; font-weight: bold;">Mês da Viagem:</td><td>{{.TravelMonth}}</td></tr>
      {{- if .TravelDate}}
      <tr><td style="padding: 8px 0; font-weight: bold;">Data de Ida:</td><td>{{.TravelDate}}</td></tr>
      {{- end}}
      {{- if .ReturnDate}}
      <tr><td style="padding: 8px 0; font-weight: bold;">Data de Volta:</td><td>{{.ReturnDate}}</td></tr>
      {{- end}}
      {{- if .TravelTime}}
      <tr><td style="padding: 8px 0; font-weight: bold;">Horário de Saída:</td><td>{{.TravelTime}}</td></tr>
      {{- end}}
      <tr><td style="padding: 8px 0; font-weight: bold;">Local de Embarque:</td><td>{{.BoardingLocation}}</td></tr>
    </table>

    <h3 style="color: #2c3e50; border-bottom: 2px solid #3498db; padding-bottom: 10px;">Dados do Passageiro</h3>
    <table style="width: 100%; border-collapse: collapse; margin-bottom: 25px;">
      <tr><td style="padding: 8px 0; font-weight: bold; width: 40%;">Nome Completo:</td><td>{{.FullName}}</td></tr>
      <tr><td style="padding: 8px 0; font-weight: bold;">CPF:</td><td>{{.CPF}}</td></tr>
      <tr><td style="padding: 8px 0; font-weight: bold;">RG:</td><td>{{.RG}}</td></tr>
      <tr><td style="padding: 8px 0; font-weight: bold;">Data de Nascimento:</td><td>{{.BirthDate}}</td></tr>
      <tr><td style="padding: 8px 0; font-weight: bold;">Telefone:</td><td>{{.Phone}}</td></tr>
      <tr><td style="padding: 8px 0; font-weight: bold;">Email:</td><td>{{.Email}}</td></tr>
      {{- if .City}}
      <tr><td style="padding: 8px 0; font-weight: bold;">Cidade:</td><td>{{.City}}</td></tr>
      {{- end}}
    </table>

    <div style="background-color: #e8f4fd; border: 1px solid #bee5eb; border-radius: 5px; padding: 15px; margin-bottom: 25px; text-align: center;">
      <p style="margin: 0; color: #0c5460;">
        <strong>Número da sua reserva:</strong><br>
        <span style="font-size: 24px; font-weight: bold; color: #2c3e50;">{{.BookingID}}</span>
      </p>
      <p style="margin: 10px 0 0 0; font-size: 12px; color: #6c757d;">Guarde este número para futuras consultas</p>
    </div>

    <div style="text-align: center; margin-top: 30px; padding-top: 20px; border-top: 1px solid #ecf0f1;">
      <p style="color: #7f8c8d; font-size: 12px; margin: 0;">
        Email enviado automaticamente em: {{.SentAt}}<br>
        Sistema de Gerenciamento de Viagens - {{.Brand}}<br>
        <strong>Obrigado por escolher a {{.Brand}}!</strong>
      </p>
    </div>
  </div>
</div>
`))
