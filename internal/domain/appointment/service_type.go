package appointment

// ===============================
// Service Types
// ===============================

// Valores persistidos literais, parte do contrato de armazenamento.
type ServiceType string

const (
	ServiceHair          ServiceType = "Cabelo"
	ServiceHairBeard     ServiceType = "Cabelo e Barba"
	ServiceHairBeardBrow ServiceType = "Cabelo, Barba e Sobrancelha"
)

// ConsoleServiceTypes: opções oferecidas pelo balcão da barbearia.
func ConsoleServiceTypes() []ServiceType {
	return []ServiceType{ServiceHair, ServiceHairBeard}
}

// SelfServiceTypes: opções do autoatendimento do cliente (inclui sobrancelha).
func SelfServiceTypes() []ServiceType {
	return []ServiceType{ServiceHair, ServiceHairBeard, ServiceHairBeardBrow}
}

func (s ServiceType) ValidForConsole() bool {
	return s == ServiceHair || s == ServiceHairBeard
}

func (s ServiceType) ValidForSelfService() bool {
	return s == ServiceHair || s == ServiceHairBeard || s == ServiceHairBeardBrow
}
