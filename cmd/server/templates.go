package main

func getCSS() string {
	return `
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            padding: 20px;
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
            background: white;
            border-radius: 20px;
            box-shadow: 0 20px 60px rgba(0,0,0,0.3);
            overflow: hidden;
        }

        .header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 40px;
            text-align: center;
        }

        .header h1 {
            font-size: 2.5em;
            margin-bottom: 10px;
        }

        .header p {
            font-size: 1.2em;
            opacity: 0.9;
        }

        .content {
            padding: 40px;
        }

        .upload-section {
            display: grid;
            grid-template-columns: 1fr 1fr;
            gap: 30px;
            margin-bottom: 30px;
        }

        .upload-box {
            border: 3px dashed #667eea;
            border-radius: 15px;
            padding: 30px;
            text-align: center;
            transition: all 0.3s;
            background: #f8f9ff;
        }

        .upload-box:hover {
            border-color: #764ba2;
            background: #f0f2ff;
        }

        .upload-box h3 {
            color: #667eea;
            margin-bottom: 15px;
        }

        .file-input {
            display: none;
        }

        .file-label {
            display: inline-block;
            padding: 12px 30px;
            background: #667eea;
            color: white;
            border-radius: 8px;
            cursor: pointer;
            transition: all 0.3s;
            margin-top: 10px;
        }

        .file-label:hover {
            background: #764ba2;
            transform: translateY(-2px);
        }

        .file-name {
            margin-top: 15px;
            color: #666;
            font-size: 0.9em;
        }

        .compare-button {
            width: 100%;
            padding: 20px;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            border: none;
            border-radius: 12px;
            font-size: 1.3em;
            font-weight: bold;
            cursor: pointer;
            transition: all 0.3s;
            margin-top: 20px;
        }

        .compare-button:hover {
            transform: translateY(-2px);
            box-shadow: 0 10px 30px rgba(102, 126, 234, 0.4);
        }

        .compare-button:disabled {
            opacity: 0.6;
            cursor: not-allowed;
        }

        .results {
            margin-top: 40px;
            display: none;
        }

        .results.show {
            display: block;
        }

        .stats {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 20px;
            margin-bottom: 30px;
        }

        .stat-card {
            background: #f8f9ff;
            padding: 20px;
            border-radius: 12px;
            text-align: center;
        }

        .stat-card h4 {
            color: #667eea;
            margin-bottom: 10px;
        }

        .stat-card .value {
            font-size: 2em;
            font-weight: bold;
            color: #764ba2;
        }

        .diff-section {
            margin-top: 30px;
        }

        .diff-section h3 {
            color: #667eea;
            margin-bottom: 15px;
        }

        .diff-item {
            background: #f8f9ff;
            border-radius: 10px;
            padding: 15px 20px;
            margin-bottom: 12px;
            border-left: 5px solid #667eea;
        }

        .diff-item.added {
            border-left-color: #2e7d32;
        }

        .diff-item.deleted {
            border-left-color: #c62828;
        }

        .diff-item.modified {
            border-left-color: #ef6c00;
        }

        .diff-type {
            font-weight: bold;
            font-size: 0.85em;
            text-transform: uppercase;
            margin-bottom: 8px;
            color: #764ba2;
        }

        .diff-lines {
            font-family: 'Courier New', monospace;
            font-size: 0.9em;
            white-space: pre-wrap;
            color: #333;
        }

        .diff-lines .line-added {
            color: #2e7d32;
        }

        .diff-lines .line-deleted {
            color: #c62828;
        }

        .explanation {
            background: #f8f9ff;
            padding: 30px;
            border-radius: 12px;
            margin-top: 30px;
            border-left: 5px solid #667eea;
        }

        .explanation h3 {
            color: #667eea;
            margin-bottom: 15px;
        }

        .explanation-content {
            line-height: 1.8;
            color: #333;
            white-space: pre-wrap;
        }

        .history {
            margin-top: 40px;
        }

        .history h3 {
            color: #667eea;
            margin-bottom: 15px;
        }

        .history-item {
            display: flex;
            justify-content: space-between;
            background: #f8f9ff;
            border-radius: 10px;
            padding: 12px 20px;
            margin-bottom: 10px;
            color: #333;
            font-size: 0.95em;
        }

        .history-item .similarity {
            color: #764ba2;
            font-weight: bold;
        }

        .loading {
            text-align: center;
            padding: 40px;
            display: none;
        }

        .loading.show {
            display: block;
        }

        .spinner {
            border: 4px solid #f3f3f3;
            border-top: 4px solid #667eea;
            border-radius: 50%;
            width: 50px;
            height: 50px;
            animation: spin 1s linear infinite;
            margin: 0 auto 20px;
        }

        @keyframes spin {
            0% { transform: rotate(0deg); }
            100% { transform: rotate(360deg); }
        }

        .error {
            background: #fee;
            color: #c33;
            padding: 15px;
            border-radius: 8px;
            margin-top: 20px;
            border-left: 5px solid #c33;
        }

        .chatbot-container {
            margin-top: 40px;
            background: white;
            border-radius: 15px;
            box-shadow: 0 4px 20px rgba(0,0,0,0.1);
            overflow: hidden;
            display: none;
        }

        .chatbot-container.show {
            display: block;
        }

        .chatbot-header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 20px;
            display: flex;
            align-items: center;
            gap: 10px;
        }

        .chatbot-header h3 {
            margin: 0;
            font-size: 1.3em;
        }

        .chatbot-answer-box {
            padding: 25px;
            background: #f8f9ff;
            border-bottom: 2px solid #e0e0e0;
            min-height: 100px;
            max-height: 300px;
            overflow-y: auto;
        }

        .chatbot-answer-content {
            line-height: 1.8;
            color: #333;
            white-space: pre-wrap;
        }

        .chatbot-input-area {
            padding: 20px;
            background: white;
            border-top: 1px solid #e0e0e0;
        }

        .chatbot-input-wrapper {
            display: flex;
            gap: 10px;
            align-items: flex-end;
        }

        .chatbot-input {
            flex: 1;
            padding: 15px;
            border: 2px solid #e0e0e0;
            border-radius: 10px;
            font-size: 1em;
            font-family: inherit;
            resize: none;
            min-height: 50px;
            max-height: 150px;
        }

        .chatbot-input:focus {
            outline: none;
            border-color: #667eea;
        }

        .chatbot-send-btn {
            padding: 15px 30px;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            border: none;
            border-radius: 10px;
            font-size: 1em;
            font-weight: bold;
            cursor: pointer;
            transition: all 0.3s;
            white-space: nowrap;
        }

        .chatbot-send-btn:hover:not(:disabled) {
            transform: translateY(-2px);
            box-shadow: 0 5px 15px rgba(102, 126, 234, 0.4);
        }

        .chatbot-send-btn:disabled {
            opacity: 0.6;
            cursor: not-allowed;
        }

        .chatbot-loading {
            text-align: center;
            padding: 20px;
            color: #667eea;
            display: none;
        }

        .chatbot-loading.show {
            display: block;
        }

        .chatbot-message {
            margin-bottom: 15px;
            padding: 12px 15px;
            border-radius: 10px;
            animation: fadeIn 0.3s;
        }

        @keyframes fadeIn {
            from { opacity: 0; transform: translateY(10px); }
            to { opacity: 1; transform: translateY(0); }
        }

        .chatbot-message.user {
            background: #e3f2fd;
            margin-left: 20%;
            text-align: right;
        }

        .chatbot-message.assistant {
            background: #f5f5f5;
            margin-right: 20%;
        }

        .chatbot-message-label {
            font-size: 0.8em;
            font-weight: bold;
            margin-bottom: 5px;
            opacity: 0.7;
        }
    `
}

func getMainAppHTML() string {
	return `
        <div class="header">
            <h1>📄 NormaDiff</h1>
            <p>Identifica cambios en reglamentaciones y normas con explicaciones inteligentes</p>
        </div>

        <div class="content">
            <form id="compareForm">
                <div class="upload-section">
                    <div class="upload-box" id="uploadBox1">
                        <h3>📄 Documento 1</h3>
                        <input type="file" id="file1" class="file-input" accept=".pdf" required>
                        <label for="file1" class="file-label">Seleccionar PDF</label>
                        <div class="file-name" id="fileName1"></div>
                    </div>

                    <div class="upload-box" id="uploadBox2">
                        <h3>📄 Documento 2</h3>
                        <input type="file" id="file2" class="file-input" accept=".pdf" required>
                        <label for="file2" class="file-label">Seleccionar PDF</label>
                        <div class="file-name" id="fileName2"></div>
                    </div>
                </div>

                <button type="submit" class="compare-button" id="compareBtn">
                    🔍 Comparar Documentos
                </button>
            </form>

            <div class="loading" id="loading">
                <div class="spinner"></div>
                <p>Procesando documentos y generando explicación...</p>
            </div>

            <div class="error" id="error" style="display: none;"></div>

            <div class="chatbot-container" id="chatbotContainer">
                <div class="chatbot-header">
                    <span>🤖</span>
                    <h3>Asistente de Documentos - Haz preguntas sobre la comparación</h3>
                </div>
                <div class="chatbot-answer-box" id="chatbotAnswerBox">
                    <div class="chatbot-answer-content" id="chatbotAnswerContent">
                        <div class="chatbot-message assistant">
                            <div class="chatbot-message-label">Asistente</div>
                            <div>Hola! Puedo ayudarte a entender las diferencias entre los documentos comparados. ¿Qué te gustaría saber?</div>
                        </div>
                    </div>
                </div>
                <div class="chatbot-loading" id="chatbotLoading">
                    <div class="spinner" style="width: 30px; height: 30px; border-width: 3px;"></div>
                    <p>Pensando...</p>
                </div>
                <div class="chatbot-input-area">
                    <div class="chatbot-input-wrapper">
                        <textarea
                            id="chatbotInput"
                            class="chatbot-input"
                            placeholder="Escribe tu pregunta sobre los documentos comparados..."
                            rows="2"
                        ></textarea>
                        <button id="chatbotSendBtn" class="chatbot-send-btn">Enviar</button>
                    </div>
                </div>
            </div>

            <div class="results" id="results">
                <div class="stats" id="stats"></div>
                <div class="diff-section" id="diffSection"></div>
                <div class="explanation" id="explanation"></div>
            </div>

            <div class="history" id="history"></div>
        </div>
    `
}
