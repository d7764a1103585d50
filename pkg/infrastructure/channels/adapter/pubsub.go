package adapter

import (
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/ExoTV1102/Ticketsystem/pkg/application"
	watermillLogAdapter "github.com/ExoTV1102/Ticketsystem/pkg/infrastructure/watermill/adapter"
)

// NewGoChannelPubSub cria o publisher/subscriber em memória do watermill.
// As mensagens não sobrevivem ao processo.
func NewGoChannelPubSub(appLogger application.AppLogger) *gochannel.GoChannel {
	return gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermillLogAdapter.NewWatermillLoggerAdapter(appLogger),
	)
}
