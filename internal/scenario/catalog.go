package scenario

import "time"

// Catalog is the fixed scenario registry. It is built once at process start
// (flight times are anchored to that moment so the demo always shows
// upcoming travel) and read-only afterwards.
type Catalog struct {
	scenarios []DemoScenario
	byID      map[string]*DemoScenario
}

// NewCatalog builds the registry with flight times anchored at now.
func NewCatalog(now time.Time) *Catalog {
	c := &Catalog{scenarios: buildScenarios(now)}
	c.byID = make(map[string]*DemoScenario, len(c.scenarios))
	for i := range c.scenarios {
		c.byID[c.scenarios[i].ID] = &c.scenarios[i]
	}
	return c
}

// Scenarios returns every scenario in display order.
func (c *Catalog) Scenarios() []DemoScenario {
	return c.scenarios
}

// ByID looks up a scenario.
func (c *Catalog) ByID(id string) (*DemoScenario, bool) {
	s, ok := c.byID[id]
	return s, ok
}

func buildScenarios(now time.Time) []DemoScenario {
	return []DemoScenario{
		{
			ID:    "delayed-rebooking",
			Name:  "Flight Delay & Rebooking",
			Badge: "IROP",
			Passenger: Profile{
				Name:        "Margaret Johnson",
				LoyaltyTier: "Gold",
				Language:    "en",
				Phone:       "214-555-0123",
			},
			Reservation: DemoReservation{
				ConfirmationCode: "DEMO123",
				Flights: []FlightLeg{
					{
						FlightNumber:  "AA1234",
						Origin:        "DFW",
						Destination:   "ORD",
						DepartureTime: now.Add(26 * time.Hour),
						ArrivalTime:   now.Add(29 * time.Hour),
						Gate:          "A12",
						Seat:          "14A",
						Status:        DemoDelayed,
					},
				},
			},
			Transcript: []TranscriptLine{
				{Role: RoleAgent, Content: "Hi Margaret! I'm calling because your flight to Chicago tomorrow has a two hour delay. Would you like me to look at other options?", DelayMs: 0, Event: EventAlert},
				{Role: RoleUser, Content: "Oh no. Yes please, I'm meeting my granddaughter for dinner.", DelayMs: 2600},
				{Role: RoleAgent, Content: "Of course. There's an earlier flight at eleven fifteen with a window seat available, just like your usual 14A. Should I move you?", DelayMs: 3000, Event: EventRebooking},
				{Role: RoleUser, Content: "Yes, that would be wonderful.", DelayMs: 2200},
				{Role: RoleAgent, Content: "Done! You're confirmed on AA1092 departing at eleven fifteen, seat 12A. I've sent the new details to your daughter as well.", DelayMs: 2800, Event: EventAction},
				{Role: RoleUser, Content: "Thank you dear, that was so easy.", DelayMs: 2400},
			},
		},
		{
			ID:    "running-late",
			Name:  "Running Late at the Airport",
			Badge: "Location",
			Passenger: Profile{
				Name:        "William Thompson",
				LoyaltyTier: "Platinum",
				Language:    "en",
				Phone:       "773-555-0234",
			},
			Reservation: DemoReservation{
				ConfirmationCode: "SENIOR2",
				Flights: []FlightLeg{
					{
						FlightNumber:  "AA789",
						Origin:        "ORD",
						Destination:   "DFW",
						DepartureTime: now.Add(55 * time.Minute),
						ArrivalTime:   now.Add(3*time.Hour + 25*time.Minute),
						Gate:          "K8",
						Seat:          "3C",
						Status:        DemoBoarding,
					},
				},
			},
			Transcript: []TranscriptLine{
				{Role: RoleAgent, Content: "William, your flight to Dallas begins boarding in twenty minutes and gate K8 is about fifteen minutes away from where you are. Let's get you moving.", DelayMs: 0, Event: EventAlert},
				{Role: RoleUser, Content: "Oh my, I was having coffee. Which way do I go?", DelayMs: 2500},
				{Role: RoleAgent, Content: "Head east towards Terminal 3, past the food court. Gate K8 is on your right. I've also let your son know you're on your way.", DelayMs: 2800},
				{Role: RoleUser, Content: "Alright, I'm walking now.", DelayMs: 2200},
				{Role: RoleAgent, Content: "Perfect. I'll check on you in a few minutes. If you'd like a cart, I can request one.", DelayMs: 2400, Event: EventAction},
			},
		},
		{
			ID:    "cancelled-handoff",
			Name:  "Cancellation & Family Handoff",
			Badge: "Handoff",
			Passenger: Profile{
				Name:        "Maria Garcia",
				LoyaltyTier: "Member",
				Language:    "es",
				Phone:       "305-555-0789",
			},
			Reservation: DemoReservation{
				ConfirmationCode: "ABUELA1",
				Flights: []FlightLeg{
					{
						FlightNumber:  "AA2345",
						Origin:        "MIA",
						Destination:   "DFW",
						DepartureTime: now.Add(5 * time.Hour),
						ArrivalTime:   now.Add(7*time.Hour + 45*time.Minute),
						Gate:          "D15",
						Seat:          "6A",
						Status:        DemoCancelled,
					},
				},
			},
			Transcript: []TranscriptLine{
				{Role: RoleAgent, Content: "Señora Garcia, lamento informarle que su vuelo a Dallas fue cancelado por mal tiempo. Puedo ayudarle a encontrar otro vuelo.", DelayMs: 0, Event: EventAlert},
				{Role: RoleUser, Content: "Ay no. No entiendo bien estas cosas. ¿Puede hablar con mi hija?", DelayMs: 2800},
				{Role: RoleAgent, Content: "Claro que sí. Le envío un enlace a su hija Ana para que pueda ver las opciones y elegir por usted.", DelayMs: 2600, Event: EventHandoff},
				{Role: RoleUser, Content: "Gracias, ella sabe de computadoras.", DelayMs: 2300},
				{Role: RoleAgent, Content: "Ana ya está conectada y eligió el vuelo de las tres de la tarde. Su nuevo asiento es el 8C, junto al pasillo.", DelayMs: 3200, Event: EventRebooking},
				{Role: RoleAgent, Content: "Le he enviado la nueva tarjeta de embarque a su teléfono. ¡Buen viaje!", DelayMs: 2600, Event: EventAction},
			},
		},
	}
}
