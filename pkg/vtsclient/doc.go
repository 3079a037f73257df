// Package vtsclient реализует WebSocket-клиент публичного API VTube Studio.
// Клиент держит одно постоянное соединение (ws://host:port), проходит
// аутентификацию плагина (с сохранением токена в файл), отправляет
// JSON-запросы и сопоставляет ответы по requestID, а также раздаёт
// входящие события (…Event) подписанным обработчикам.
//
// Высокоуровневые методы (по одному на операцию API):
//
//   - Statistics, FolderInfo, CurrentModel, AvailableModels, LoadModel,
//     MoveModel, Hotkeys, TriggerHotkey, ExpressionState,
//     ActivateExpression, ArtMeshList, InputParameterList, ParameterValue,
//     Live2DParameterList, CreateParameter, DeleteParameter,
//     InjectParameterData, NDIConfig, ItemList, LoadItem, UnloadItem,
//     MoveItem, FaceFound, SubscribeEvent/UnsubscribeEvent.
//
// События — через реестр обработчиков:
//   - OnEvent(kind, handler), RemoveEventHandler(kind, handler).
//
// Безопасность и устойчивость:
//   - Запись в сокет сериализована (мьютекс + write-deadline).
//   - Ожидающие запросы имеют дедлайн; при закрытии сессии все они
//     завершаются ошибкой, ни один не ждёт вечно.
//   - Паника в обработчике события не роняет цикл чтения и не мешает
//     остальным обработчикам.
//
// Пример:
//
//	vts := vtsclient.New(vtsclient.Config{
//	    Host: "localhost", Port: 8001,
//	    PluginName: "MyPlugin", PluginDeveloper: "Me",
//	    AuthFile: "vts_token.txt", SaveAuthToken: true,
//	}, logger)
//	token, err := vts.Start(ctx)
//	if err != nil { log.Fatal().Err(err).Send() }
//	defer vts.Close()
//
//	vts.OnEvent(vtsclient.EventTypeModelLoaded, func(ev *vtsclient.Event) {
//	    var data vtsclient.ModelLoadedEventData
//	    _ = ev.Bind(&data)
//	    fmt.Println("model loaded:", data.ModelName)
//	})
//	_, _ = vts.SubscribeEvent(ctx, vtsclient.EventTypeModelLoaded, nil)
package vtsclient
