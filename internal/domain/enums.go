package domain

// Personality is the DISC classification attached to leads, prospects and
// sequence steps. Scheduling only expands steps whose personality matches
// the target's.
type Personality string

const (
	PersonalityDominant      Personality = "DOMINANT"
	PersonalityInfluential   Personality = "INFLUENTIAL"
	PersonalitySteady        Personality = "STEADY"
	PersonalityConscientious Personality = "CONSCIENTIOUS"
)

// IsValid returns true if the personality is one of the defined constants.
func (p Personality) IsValid() bool {
	switch p {
	case PersonalityDominant, PersonalityInfluential, PersonalitySteady, PersonalityConscientious:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (p Personality) String() string {
	return string(p)
}

// Channel is the outreach medium of a step, todo or interaction.
type Channel string

const (
	ChannelEmail    Channel = "EMAIL"
	ChannelLinkedIn Channel = "LINKEDIN"
	ChannelPhone    Channel = "PHONE"
	ChannelSMS      Channel = "SMS"
	ChannelMeeting  Channel = "MEETING"
	ChannelOther    Channel = "OTHER"
)

// IsValid returns true if the channel is one of the defined constants.
func (c Channel) IsValid() bool {
	switch c {
	case ChannelEmail, ChannelLinkedIn, ChannelPhone, ChannelSMS, ChannelMeeting, ChannelOther:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (c Channel) String() string {
	return string(c)
}
